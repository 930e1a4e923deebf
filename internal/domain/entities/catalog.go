package entities

// NameMaxLength é o tamanho máximo de nomes de categorias, gêneros e obras
const NameMaxLength = 256

// Category agrupa obras (filme, livro, música...)
type Category struct {
	ID   uint
	Name string
	Slug string
}

// Genre classifica obras; uma obra pode ter vários gêneros
type Genre struct {
	ID   uint
	Name string
	Slug string
}
