package models

// Block is an administrator-defined hold. It consumes capacity exactly
// like a confirmed booking but carries no customer identity.
type Block struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	StartTS int64 `gorm:"column:start_ts;not null;index:idx_blocks_start_end,priority:1" json:"start_ts"`
	EndTS   int64 `gorm:"column:end_ts;not null;index:idx_blocks_start_end,priority:2" json:"end_ts"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (Block) TableName() string {
	return "blocks"
}
