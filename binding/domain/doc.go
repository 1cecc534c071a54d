// Package domain define os tipos e contratos do binding de query parameters:
// declarações de parâmetros/providers, a query recebida, os registros resolvidos
// e os erros de resolução.
//
// Este pacote não depende de net/http nem de implementações concretas.
package domain
