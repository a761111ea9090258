package domain

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	Username  string    `gorm:"index" json:"username" form:"username"`
	Password  string    `json:"-" form:"password"`
	Role      string    `gorm:"size:32" json:"role" form:"role"`
	Email     string    `gorm:"size:100" json:"email" form:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "users"
}

// OperationLog records one successful mutation for auditing.
type OperationLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OprIp     string    `gorm:"size:64" json:"opr_ip"`
	OptAction string    `gorm:"size:64" json:"opt_action"`
	OptDesc   string    `gorm:"size:255" json:"opt_desc"`
	OptTime   time.Time `gorm:"index" json:"opt_time"`
}

// TableName Specify table name
func (OperationLog) TableName() string {
	return "operation_logs"
}
