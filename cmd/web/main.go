package main

import "crewlink_backend/internal/app"

func main() {
	app.Run()
}
