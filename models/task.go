package models

import (
	"time"
)

// Task is the persisted todo item. Enum fields are coerced at the API
// boundary; the collection itself accepts any shape.
type Task struct {
	ID            string    `bson:"_id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Priority      string    `bson:"priority" json:"priority"`
	Category      string    `bson:"category" json:"category"`
	EstimatedTime string    `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	Subtasks      []string  `bson:"subtasks,omitempty" json:"subtasks,omitempty"`
	Deadline      string    `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Completed     bool      `bson:"completed" json:"completed"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	LastModified  time.Time `bson:"lastModified" json:"lastModified"`
}

// AllowedCategories is the closed category vocabulary tasks hold at rest.
var AllowedCategories = []string{
	"Work", "Personal", "Health", "Learning", "Shopping",
	"Finance", "Home", "Social", "Academic", "Fitness",
}

const (
	DefaultCategory   = "Personal"
	DefaultPriority   = "medium"
	DefaultDifficulty = "medium"
)

// CategorySynonyms maps common lower-cased variants onto the canonical set.
var CategorySynonyms = map[string]string{
	"academic":   "Learning",
	"study":      "Learning",
	"education":  "Learning",
	"school":     "Learning",
	"university": "Learning",
	"work":       "Work",
	"job":        "Work",
	"office":     "Work",
	"business":   "Work",
	"personal":   "Personal",
	"family":     "Personal",
	"health":     "Health",
	"medical":    "Health",
	"fitness":    "Fitness",
	"exercise":   "Fitness",
	"gym":        "Fitness",
	"shopping":   "Shopping",
	"buy":        "Shopping",
	"purchase":   "Shopping",
	"finance":    "Finance",
	"money":      "Finance",
	"banking":    "Finance",
	"home":       "Home",
	"house":      "Home",
	"household":  "Home",
	"social":     "Social",
	"friends":    "Social",
	"party":      "Social",
}
