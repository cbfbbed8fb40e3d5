package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProfile is the locally persisted connection profile.
type SavedProfile struct {
	Address string `json:"address"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store for profile storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "slitherio",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProfile loads the saved profile, or nil when none exists.
func LoadProfile() (*SavedProfile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("profile")
	if err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var profile SavedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("Warning: Could not parse saved profile: %v", err)
		return nil, err
	}
	return &profile, nil
}

// SaveProfile writes the profile to disk. Failures are logged, not fatal.
func SaveProfile(profile SavedProfile) {
	if !gdataInitialized || gdataManager == nil {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("profile", data); err != nil {
		log.Printf("Warning: Could not save profile: %v", err)
	}
}
