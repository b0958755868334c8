package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
)

var (
	userPageIndex int
	userPageSize  int
	userKeyword   string

	createUser client.User
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, paged and searchable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		page, err := a.api.SearchUsers(cmd.Context(), userPageIndex, userPageSize, userKeyword)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}

		for _, u := range page.Data {
			fmt.Printf("%4d  %-10s %s <%s>\n", u.ID, u.Role, u.Name, u.Email)
		}
		fmt.Printf("Page %d of %d rows total\n", page.PageIndex, page.TotalRow)
		return nil
	},
}

var adminUsersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		created, err := a.api.CreateUser(cmd.Context(), createUser)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Tạo người dùng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Created user %d (%s)\n", created.ID, created.Email)
		return nil
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		if err := a.api.DeleteUser(cmd.Context(), userID); err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Xóa người dùng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Deleted user %d\n", userID)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminUsersCmd)
	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersCreateCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)

	adminUsersListCmd.Flags().IntVar(&userPageIndex, "page", 1, "Page index, starting at 1")
	adminUsersListCmd.Flags().IntVar(&userPageSize, "size", 20, "Page size")
	adminUsersListCmd.Flags().StringVar(&userKeyword, "keyword", "", "Search keyword")

	adminUsersCreateCmd.Flags().StringVar(&createUser.Name, "name", "", "Full name")
	adminUsersCreateCmd.Flags().StringVar(&createUser.Email, "email", "", "Email address")
	adminUsersCreateCmd.Flags().StringVar(&createUser.Password, "password", "", "Password")
	adminUsersCreateCmd.Flags().StringVar(&createUser.Phone, "phone", "", "Phone number")
	adminUsersCreateCmd.Flags().StringVar(&createUser.Birthday, "birthday", "", "Birthday (dd/mm/yyyy)")
	adminUsersCreateCmd.Flags().BoolVar(&createUser.Gender, "gender", true, "Gender flag as the backend models it")
	adminUsersCreateCmd.Flags().StringVar(&createUser.Role, "role", "USER", "Role, USER or ADMIN")
	adminUsersCreateCmd.MarkFlagRequired("name")
	adminUsersCreateCmd.MarkFlagRequired("email")
	adminUsersCreateCmd.MarkFlagRequired("password")
}
