package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tubetrans/internal/clipboard"
	"tubetrans/internal/logger"
	"tubetrans/internal/text"
	"tubetrans/models"
	"tubetrans/services"
)

var (
	fetchTranslate bool
	fetchCopy      bool
	fetchJSON      bool

	// FetchCmd runs one transcript request without the GUI.
	FetchCmd = &cobra.Command{
		Use:   "fetch [flags] <youtube url>",
		Short: "Generate a transcript for a YouTube link and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  runFetch,
		Long: `fetch validates the link, asks Gemini for the video's title, channel and transcript,
and prints the result. With --translate the transcript is also translated into the
configured target language. A failed translation is reported on stderr and the
original transcript is still printed.`,
	}
)

func init() {
	RootCmd.AddCommand(FetchCmd)
	flags := FetchCmd.Flags()
	flags.BoolVarP(&fetchTranslate, "translate", "t", false, "also translate the transcript")
	flags.BoolVarP(&fetchCopy, "copy", "c", false, "copy the transcript (or translation) to the clipboard")
	flags.BoolVar(&fetchJSON, "json", false, "print the record as JSON")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := newSession(appConfig)

	var (
		mu    sync.Mutex
		notes []services.Notification
	)
	s.OnNotify(func(n services.Notification) {
		mu.Lock()
		defer mu.Unlock()
		notes = append(notes, n)
	})

	if !s.Submit(ctx, args[0]) {
		return errors.New("no URL given")
	}
	s.Wait()

	state := s.State()
	if state.Status != models.StatusSuccess {
		return errors.New(state.ErrorMessage)
	}

	if fetchTranslate {
		if s.Translate(ctx) {
			s.Wait()
			state = s.State()
		} else {
			logger.Warn("Nothing to translate for %s", state.Record.VideoID)
		}
	}
	rec := *state.Record

	mu.Lock()
	for _, n := range notes {
		fmt.Fprintln(cmd.ErrOrStderr(), n.Message)
	}
	mu.Unlock()

	out := cmd.OutOrStdout()
	if fetchJSON {
		if err := writeJSON(out, rec); err != nil {
			return err
		}
	} else {
		writeRecord(out, rec, appConfig.TargetLang, fetchTranslate)
	}

	if fetchCopy {
		if !clipboard.Available() {
			return errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
		}
		tab := models.TabOriginal
		if rec.HasTranslation() {
			tab = models.TabTranslated
		}
		if err := clipboard.WriteAll(tab.Text(rec)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	}
	return nil
}

func writeJSON(w io.Writer, rec models.TranscriptRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rec)
}

func writeRecord(w io.Writer, rec models.TranscriptRecord, targetLang string, withTranslation bool) {
	fmt.Fprintf(w, "%s\n", rec.Title)
	fmt.Fprintf(w, "Channel: %s\n", rec.Author)
	fmt.Fprintf(w, "URL:     %s\n\n", rec.WatchURL())
	fmt.Fprintln(w, strings.TrimSpace(rec.Transcript))

	if withTranslation {
		fmt.Fprintf(w, "\n--- %s ---\n", text.GetNativeName(targetLang))
		fmt.Fprintln(w, strings.TrimSpace(models.TabTranslated.Text(rec)))
	}
}
