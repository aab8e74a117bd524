// Package main provides the polyiter CLI.
//
// polyiter exercises the traversal engine from the command line:
//   - demo walks through the classic traversals
//   - seq prints an arithmetic sequence
//   - keys lists the keys of YAML documents chained as prototypes
//   - classify prints the semantic tag and shape of YAML values
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Errorf("polyiter: %v", err)
		os.Exit(1)
	}
}
