package main

import "careconnect_backend/internal/app"

func main() {
	app.Run()
}
