// Package cli implements the interactive Pennwest Connect terminal
// client: a prompt loop dispatching note browsing, preview, download,
// upload and account commands against the backend API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/blobx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/config"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/services"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/session"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/token"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/filex"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/logging"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	session   *session.Manager
	notes     *services.NotesService
	uploads   *services.UploadService
	previews  *services.PreviewService
	downloads *services.DownloadService
	spool     *blobx.Spool

	reader *bufio.Reader
	out    io.Writer
	bar    progress.Model

	// lastList caches the most recent listing so commands can address
	// notes by id without refetching.
	lastList []models.Note
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("preparing data dir: %w", err)
	}
	downloadDir, err := filex.EnsureDir(c.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("preparing download dir: %w", err)
	}
	spool, err := blobx.NewSpool(filepath.Join(dataDir, "spool"))
	if err != nil {
		return nil, fmt.Errorf("preparing preview spool: %w", err)
	}

	tokens := token.NewStore(dataDir)
	apiClient, err := api.NewHTTPClient(c.APIBaseURL, tokens, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return newApp(c, logger, apiClient, tokens, spool, downloadDir, bufio.NewReader(os.Stdin), os.Stdout), nil
}

// newApp wires the services around an already constructed API client.
// Tests use it to substitute fakes and in-memory streams.
func newApp(c *config.Config, logger logging.Logger, apiClient api.Client, tokens session.TokenStore, spool *blobx.Spool, downloadDir string, r *bufio.Reader, w io.Writer) *App {
	a := &App{
		config: c,
		log:    logger,
		reader: r,
		out:    w,
		spool:  spool,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
	a.session = session.NewManager(apiClient, tokens, logger)
	a.notes = services.NewNotesService(apiClient)
	a.uploads = services.NewUploadService(apiClient, a.renderProgress)
	a.previews = services.NewPreviewService(apiClient, spool)
	a.downloads = services.NewDownloadService(apiClient, spool, downloadDir)
	return a
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	st, _ := a.session.Current()
	return st == session.Authenticated
}

func (a *App) renderProgress(v int) {
	fmt.Fprintf(a.out, "\r%s %3d%%", a.bar.ViewAs(float64(v)/100), v)
}
