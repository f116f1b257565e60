// Comando importer executa o pipeline de planilhas pela linha de comando.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
