// Package application contém os casos de uso do binding: registro das
// declarações, resolução de um provider e composição de um endpoint.
//
// Depende apenas do pacote domain e não conhece net/http.
// Ex.: Composer.ComposeEndpoint(ep, query) retorna os registros na ordem declarada.
package application
