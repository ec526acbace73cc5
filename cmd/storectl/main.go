// Command storectl runs schema and data maintenance tasks for the store.
package main

import "storefront/cmd/storectl/commands"

func main() {
	commands.Execute()
}
