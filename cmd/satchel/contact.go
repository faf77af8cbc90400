// Contact command group.
package main

import "github.com/spf13/cobra"

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage address book contacts",
}

func init() {
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactChangeCmd)
	contactCmd.AddCommand(contactAddPhoneCmd)
	contactCmd.AddCommand(contactRemovePhoneCmd)
	contactCmd.AddCommand(contactPhoneCmd)
	contactCmd.AddCommand(contactAddBirthdayCmd)
	contactCmd.AddCommand(contactBirthdayCmd)
	contactCmd.AddCommand(contactAddEmailCmd)
	contactCmd.AddCommand(contactAddAddressCmd)
	contactCmd.AddCommand(contactFindCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactRenameCmd)
	contactCmd.AddCommand(contactDeleteCmd)
}
