// cmd/fastabench/main.go
package main

import (
	"fastabench/internal/app"
	"fastabench/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
