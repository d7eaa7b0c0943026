package worker

// Asset is one uploaded image tracked by the ledger.
type Asset struct {
	ID        int64  `gorm:"primaryKey"`
	PublicID  string `gorm:"uniqueIndex"`
	Source    string
	Hash      string `gorm:"index"`
	Format    string
	Bytes     int64
	BatchID   string
	CloudName string `gorm:"index"`
}
