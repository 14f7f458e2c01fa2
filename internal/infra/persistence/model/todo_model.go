package model

import "time"

// TodoModel mirrors the 'todos' table. Rows go away with their owner.
type TodoModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	State       string  `gorm:"type:varchar(16);not null;default:todo;check:chk_todos_state,state IN ('draft','todo','doing','done','trash')"`
	UserID      uint    `gorm:"not null;index:idx_todos_user_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
