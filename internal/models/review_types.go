package models

// Review is a user review of a product. Date carries date-only precision
// (YYYY-MM-DD), assigned by the server on create.
type Review struct {
	ID        string  `json:"id" db:"id"`
	ProductID string  `json:"productId" db:"product_id"`
	UserID    string  `json:"userId" db:"user_id"`
	UserName  string  `json:"userName" db:"user_name"`
	Rating    float64 `json:"rating" db:"rating"` // 1-5
	Title     string  `json:"title" db:"title"`
	Text      string  `json:"text" db:"text"`
	Date      string  `json:"date" db:"date"`
	Helpful   int     `json:"helpful" db:"helpful"`
	Verified  bool    `json:"verified" db:"verified"`
}
