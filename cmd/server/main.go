package main

import "github.com/init-pkg/contacts-uploader/internal/bootstrap"

// @title        Contacts uploader API
// @version      1.0
// @description  Upload Excel contact sheets and bulk insert them.
// @BasePath     /api
func main() {
	bootstrap.Run()
}
