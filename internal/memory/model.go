package memory

import "time"

// VideoMemory is one processed video. Its primary key doubles as the
// pipeline's dedup key: an existing row means the video is never reanalyzed.
type VideoMemory struct {
	ID               string    `gorm:"primaryKey"`
	Title            string    `gorm:"index"`
	URL              string
	Transcript       string    `gorm:"type:text"`
	Report           string    `gorm:"type:text"`
	AvgConfidence    float64
	LowestConfidence float64
	IsFlagged        bool      `gorm:"default:false"`
	ProcessedAt      time.Time `gorm:"autoCreateTime"`
}

// TableName keeps the table name stable across gorm naming changes.
func (VideoMemory) TableName() string {
	return "video_memories"
}
