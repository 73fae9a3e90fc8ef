package main

import "github.com/steptrek/steptrek/internal/app"

func main() {
	app.Run()
}
