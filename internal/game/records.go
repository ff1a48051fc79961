package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	recordsFile  = "records.json"
	maxRecords   = 10
	savesDirName = "saves"
)

// VictoryRecord is one winning run.
type VictoryRecord struct {
	Score      int       `json:"score"`
	MaxCombo   int       `json:"max_combo"`
	HealthLeft int       `json:"health_left"`
	Duration   string    `json:"duration"`
	Date       time.Time `json:"date"`
}

// Records holds the persisted top list.
type Records struct {
	Entries []VictoryRecord `json:"entries"`
}

// CalculateScore computes the run score.
// BaseScore = (HealthLeft * 10) + (MaxCombo * 1000)
// TimeBonus = max(0, 300 - ElapsedSeconds) * 5  // Bonus for finishing under 5 minutes
func CalculateScore(healthLeft, maxCombo int, elapsed float64) int {
	baseScore := healthLeft*10 + maxCombo*1000

	elapsedSeconds := int(elapsed)
	timeBonus := 0
	if elapsedSeconds < 300 {
		timeBonus = (300 - elapsedSeconds) * 5
	}

	return baseScore + timeBonus
}

// FormatDuration formats elapsed seconds as MM:SS.
func FormatDuration(elapsed float64) string {
	total := int(elapsed)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func getRecordsPath() string {
	return filepath.Join(getAppSaveDir(), recordsFile)
}

// LoadRecords reads the record list from disk. A missing or corrupt file
// yields an empty list, not an error.
func LoadRecords() (*Records, error) {
	data, err := os.ReadFile(getRecordsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Records{Entries: []VictoryRecord{}}, nil
		}
		return nil, err
	}

	var records Records
	if err := json.Unmarshal(data, &records); err != nil {
		return &Records{Entries: []VictoryRecord{}}, nil
	}
	return &records, nil
}

// SaveRecords writes the record list to disk.
func SaveRecords(records *Records) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(getRecordsPath(), data, 0644)
}

// AddRecord inserts a new entry, keeping the list sorted by score and capped
// at the top ten.
func AddRecord(records *Records, entry VictoryRecord) {
	records.Entries = append(records.Entries, entry)

	sort.Slice(records.Entries, func(i, j int) bool {
		return records.Entries[i].Score > records.Entries[j].Score
	})

	if len(records.Entries) > maxRecords {
		records.Entries = records.Entries[:maxRecords]
	}
}

// IsRecord checks whether a score qualifies for the top ten.
func IsRecord(records *Records, score int) bool {
	if len(records.Entries) < maxRecords {
		return true
	}
	return score > records.Entries[len(records.Entries)-1].Score
}

// getAppSaveDir returns the local saves directory next to the app executable.
func getAppSaveDir() string {
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		// When running via "go run", the executable lives in a temp build dir.
		// In that case, prefer the current working directory so records persist.
		if !isTempExeDir(exeDir) {
			dir := filepath.Join(exeDir, savesDirName)
			if err := os.MkdirAll(dir, 0755); err == nil {
				return dir
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		dir := filepath.Join(cwd, savesDirName)
		_ = os.MkdirAll(dir, 0755)
		return dir
	}
	return savesDirName
}

// isTempExeDir returns true when the executable directory looks like a Go temp build path.
func isTempExeDir(dir string) bool {
	clean := filepath.Clean(dir)
	if strings.Contains(clean, string(filepath.Separator)+"go-build") {
		return true
	}
	if strings.HasPrefix(clean, filepath.Clean(os.TempDir())+string(filepath.Separator)) {
		return true
	}
	return false
}
