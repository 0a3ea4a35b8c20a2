package model

type Review struct {
	Rating   int64
	Feedback string
	Reviewer string
}
