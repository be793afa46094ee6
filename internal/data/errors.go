package data

import "errors"

// Erros sentinela do estudo, para distinção via errors.Is.
var (
    ErrColunaInexistente  = errors.New("coluna inexistente na tabela")
    ErrDesfechoNaoBinario = errors.New("desfecho com valores fora de 0 e 1")
    ErrDesfechoDegenerado = errors.New("desfecho sem casos positivos e negativos")
)
