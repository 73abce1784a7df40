// @title           jobdesk API
// @version         1.0
// @description     API маркетплейса вакансий: кандидаты, работодатели и воронка найма.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "jobdesk_backend/internal/app"

func main() {
	app.Run()
}
