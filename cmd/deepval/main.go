// Command deepval runs the deepval utilities over YAML or JSON documents.
//
//	deepval empty   [file]            print whether the document is deeply empty
//	deepval flatten [file]            print every terminal value of the document
//	deepval digits  <input> <format>  lay the digits of input into format
//
// Documents are read from the file argument, or from stdin when it is absent
// or "-". Defaults come from the library, then from --config, then from flags.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
