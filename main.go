package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// run plays the roster scenario against the given output stream. Three
// records are created, the two named ones are rendered, and the scope
// releases all of them in reverse order of creation.
func run(out io.Writer) {
	scope := NewScope()
	defer scope.Close()

	scope.Track(NewRecord(out))
	ali := scope.Track(NewRecordWithValues(out, "Ali", 32))
	rayyan := scope.Track(NewRecordWithValues(out, "Rayyan", 20))

	ali.Render()
	rayyan.Render()
}

func main() {
	log.Info("Starting roster demo")
	run(os.Stdout)
}
