package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
)

var signupReq client.SignUpRequest

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.api.SignUp(cmd.Context(), signupReq)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Đăng ký thất bại. Vui lòng thử lại."))
		}

		fmt.Printf("Registered %s (%s). Run \"roomstay signin %s\" to sign in.\n",
			user.Name, user.Email, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVar(&signupReq.Name, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupReq.Email, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signupReq.Password, "password", "", "Password")
	signupCmd.Flags().StringVar(&signupReq.Phone, "phone", "", "Phone number")
	signupCmd.Flags().StringVar(&signupReq.Birthday, "birthday", "", "Birthday (dd/mm/yyyy)")
	signupCmd.Flags().BoolVar(&signupReq.Gender, "gender", true, "Gender flag as the backend models it")
	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")
}
