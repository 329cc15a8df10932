// @title           Scheme Sahayak API
// @version         1.0
// @description     Citizen-facing API for checking eligibility for government welfare schemes, bookmarking them and tracking applications.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "schemecheck_backend/internal/app"

func main() {
	app.Run()
}
