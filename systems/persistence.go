package systems

import (
	"errors"

	cfg "github.com/automoto/portfolio/config"
	"github.com/quasilyte/gdata"
)

// ErrNoPersistence is returned when the data directory could not be opened.
var ErrNoPersistence = errors.New("persistence unavailable")

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager that receives downloads
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Download.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DownloadStore saves files into the app's gdata directory.
type DownloadStore struct{}

// SaveResume writes the resume under the configured item name
func (DownloadStore) SaveResume(data []byte) error {
	if !gdataInitialized || gdataManager == nil {
		return ErrNoPersistence
	}
	if err := gdataManager.SaveItem(cfg.Download.ResumeItem, data); err != nil {
		return err
	}
	return nil
}
