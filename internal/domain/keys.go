package domain

type CtxKey string

const (
	KeyUserID      CtxKey = "UserID"
	KeyUserEmail   CtxKey = "Email"
	KeyAccountType CtxKey = "AccountType"
)
