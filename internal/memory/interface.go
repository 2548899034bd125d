package memory

// Store persists processed-video records and answers dedup checks.
type Store interface {
	Exists(videoID string) (bool, error)
	Save(record *VideoMemory) error
	Get(videoID string) (*VideoMemory, error)
	Recent(limit int) ([]VideoMemory, error)
}
