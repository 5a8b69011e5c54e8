package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"drmind/internal/models"
	"drmind/internal/sentiment"
	"drmind/internal/usecases"
)

const maxJournalLen = 1000

// EntryStore is what the journal page needs from storage.
// *storage.EntryStorage satisfies it.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *models.MoodEntry) error
	GetEntries(ctx context.Context, limit int) ([]models.MoodEntry, error)
}

// ResponseGenerator produces the comfort message and suggestions for a
// submission. *usecases.Responder satisfies it.
type ResponseGenerator interface {
	Generate(ctx context.Context, mood, journal string, sentiment float64) models.AIResponse
}

type JournalHandler struct {
	entries   EntryStore
	responder ResponseGenerator
	log       *zap.SugaredLogger
	tmpl      *template.Template
}

func NewJournalHandler(entries EntryStore, responder ResponseGenerator, log *zap.SugaredLogger, tmpl *template.Template) *JournalHandler {
	return &JournalHandler{
		entries:   entries,
		responder: responder,
		log:       log,
		tmpl:      tmpl,
	}
}

type indexPage struct {
	Moods        []models.Mood
	Entries      []models.MoodEntry
	TotalEntries int
	AvgSentiment float64
	PositiveDays int
	ChartData    template.JS
	Quote        string
	Flash        Flash
}

// HandleIndex serves the journal page: POST records an entry, GET
// renders the listing with derived stats. The page has no auth check.
func (jh *JournalHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleIndex"

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPost:
		jh.handleSubmit(w, r)
	case http.MethodGet:
		jh.handleList(w, r)
	default:
		jh.log.Debugw("method not allowed", "op", op, "method", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (jh *JournalHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	op := "handlers.handleSubmit"

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "⚠️ Bad request, please try again.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	mood := r.PostFormValue("mood")
	journal := r.PostFormValue("journal")

	switch {
	case mood == "" || journal == "":
		setFlash(w, "error", "⚠️ Please select a mood and write a journal entry!")
	case !models.ValidMood(mood):
		setFlash(w, "error", "⚠️ Please pick a mood from the list!")
	case len(journal) > maxJournalLen:
		setFlash(w, "error", "⚠️ Journal entry is too long (1000 characters max)!")
	default:
		score := sentiment.Score(journal)
		aiResponse := jh.responder.Generate(r.Context(), mood, journal, score)

		entry := models.MoodEntry{
			Mood:           mood,
			Journal:        journal,
			Sentiment:      score,
			ComfortMessage: aiResponse.Comfort,
			Suggestions:    aiResponse.Suggestions,
		}

		if err := jh.entries.CreateEntry(r.Context(), &entry); err != nil {
			jh.log.Errorw("entry create failed", "op", op, "error", err)
			setFlash(w, "error", "⚠️ Error saving entry, please try again.")
		} else {
			setFlash(w, "success", "📝 Entry saved successfully!")
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (jh *JournalHandler) handleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.handleList"

	entries, err := jh.entries.GetEntries(r.Context(), 0)
	if err != nil {
		jh.log.Errorw("entry listing failed", "op", op, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	stats := usecases.ComputeStats(entries)

	chartJSON, err := json.Marshal(stats.Trend)
	if err != nil {
		jh.log.Errorw("chart encode failed", "op", op, "error", err)
		chartJSON = []byte("[]")
	}

	page := indexPage{
		Moods:        models.Moods,
		Entries:      entries,
		TotalEntries: stats.TotalEntries,
		AvgSentiment: stats.AvgSentiment,
		PositiveDays: stats.PositiveDays,
		ChartData:    template.JS(chartJSON),
		Quote:        models.RandomQuote(),
		Flash:        popFlash(w, r),
	}

	if err := jh.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		jh.log.Errorw("template render failed", "op", op, "error", err)
	}
}
