package main

import "fitpath_backend/internal/app"

func main() {
	app.Run()
}
