// Package editor connects a mind-map controller to the outside world: it
// reads documents through an Opener and hands saved documents to a
// Downloader.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hay-kot/mindmap/internal/core/logging"
	"github.com/hay-kot/mindmap/internal/core/mindmap"
)

// ErrNothingToSave is returned by Save when the document is empty.
var ErrNothingToSave = errors.New("nothing to save")

// Opener reads the content of a document.
type Opener interface {
	Open(ctx context.Context, path string) (string, error)
}

// Downloader delivers a saved document under the given filename and
// returns where it ended up.
type Downloader interface {
	Download(ctx context.Context, filename string, content []byte) (string, error)
}

// Service performs load and save for one controller. Read may run off the UI
// loop; Apply and Save must run on it.
type Service struct {
	ctrl       *mindmap.Controller
	opener     Opener
	downloader Downloader
	filename   string
	log        zerolog.Logger
}

// NewService creates a document service. Saved documents are delivered under
// filename.
func NewService(ctrl *mindmap.Controller, opener Opener, downloader Downloader, filename string) *Service {
	return &Service{
		ctrl:       ctrl,
		opener:     opener,
		downloader: downloader,
		filename:   filename,
		log:        logging.Component("editor").Hook(logging.ContextHook{}),
	}
}

// Controller returns the controller the service loads into.
func (s *Service) Controller() *mindmap.Controller {
	return s.ctrl
}

// Filename returns the name saved documents are delivered under.
func (s *Service) Filename() string {
	return s.filename
}

// Read fetches the content at path without touching the controller.
func (s *Service) Read(ctx context.Context, path string) (string, error) {
	ctx = logging.WithDocument(logging.WithOperation(ctx, "read"), path)

	content, err := s.opener.Open(ctx, path)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("read failed")
		return "", fmt.Errorf("open document: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("bytes", len(content)).Msg("document read")
	return content, nil
}

// Apply replaces the controller's document with content read from path.
// Blank content returns mindmap.ErrEmptyLoad and leaves the document as is.
func (s *Service) Apply(ctx context.Context, path, content string) error {
	ctx = logging.WithDocument(logging.WithOperation(ctx, "load"), path)

	if err := s.ctrl.Load(content); err != nil {
		if errors.Is(err, mindmap.ErrEmptyLoad) {
			s.log.Debug().Ctx(ctx).Msg("empty document ignored")
		} else {
			s.log.Error().Ctx(ctx).Err(err).Msg("load failed")
		}
		return err
	}

	s.log.Info().Ctx(ctx).Int("nodes", s.ctrl.Store().Len()).Msg("document loaded")
	return nil
}

// Load reads path and applies it.
func (s *Service) Load(ctx context.Context, path string) error {
	content, err := s.Read(ctx, path)
	if err != nil {
		return err
	}
	return s.Apply(ctx, path, content)
}

// Save encodes the document and hands it to the downloader. It returns the
// location reported by the downloader.
func (s *Service) Save(ctx context.Context) (string, error) {
	ctx = logging.WithDocument(logging.WithOperation(ctx, "save"), s.filename)

	content := s.ctrl.Save()
	if content == "" {
		return "", ErrNothingToSave
	}

	location, err := s.downloader.Download(ctx, s.filename, []byte(content))
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Msg("save failed")
		return "", fmt.Errorf("save document: %w", err)
	}

	s.log.Info().Ctx(ctx).Str("location", location).Msg("document saved")
	return location, nil
}
