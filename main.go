package main

import "github.com/killallgit/podcastr/cmd"

// @title           Podcastr API
// @version         1.0.0
// @description     Episode catalog and persistent player API behind the Podcastr site
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcastr
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Operator token issued by 'podcastr token'
func main() {
	cmd.Execute()
}
