package model

import "time"

// NatureSlide is one image of the front page carousel.
type NatureSlide struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Src       string    `json:"src"`
	CreatedAt time.Time `json:"created_at"`
}

// SlideSeed is a slide before insertion.
type SlideSeed struct {
	Title string
	Src   string
}
