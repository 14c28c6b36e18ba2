// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "SESSIONLOG_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	jsonFileName   string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	jsonFilePath   string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize computes the application paths. Only the first call has any
// effect.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configDir:      "sessionlog",
			configFileName: "config.yml",
			jsonFileName:   "sessions.json",
			dbFileName:     "sessionlog.db",
			statusFileName: "status.json",
			logFileName:    "sessionlog.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// JSONFilePath is the default location of the JSON session log.
func JSONFilePath() string {
	return Must().jsonFilePath
}

// DBFilePath is the default location of the BoltDB session log.
func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.jsonFileName = fmt.Sprintf("sessions_%s.json", env)
		p.dbFileName = fmt.Sprintf("sessionlog_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("sessionlog_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.jsonFilePath = filepath.Join(dataDir, p.jsonFileName)

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
