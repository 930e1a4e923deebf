package entities

import "time"

// Authored é implementado por recursos que possuem um autor
type Authored interface {
	OwnerID() uint
}

// Review é a avaliação de um usuário sobre uma obra
type Review struct {
	ID             uint
	TitleID        uint
	Text           string
	AuthorID       uint
	AuthorUsername string
	Score          int
	PubDate        time.Time
}

// OwnerID retorna o ID do autor da review
func (r *Review) OwnerID() uint {
	return r.AuthorID
}

// Comment é um comentário sobre uma review
type Comment struct {
	ID             uint
	ReviewID       uint
	Text           string
	AuthorID       uint
	AuthorUsername string
	PubDate        time.Time
}

// OwnerID retorna o ID do autor do comentário
func (c *Comment) OwnerID() uint {
	return c.AuthorID
}
