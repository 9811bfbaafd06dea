package models

import "time"

// Review is a product review stored in Postgres. Reviews are deleted with
// their product.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorName string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// CreateReviewRequest is the payload for creating a review.
type CreateReviewRequest struct {
	ProductID  uint   `json:"productId" binding:"required,min=1"`
	AuthorName string `json:"authorName" binding:"required,min=2,max=100"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required,min=10,max=1000"`
}
