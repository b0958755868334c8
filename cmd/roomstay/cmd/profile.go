package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/session"
)

var (
	profileName     string
	profilePhone    string
	profileBirthday string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed-in profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.signedInUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Name:     %s\n", user.Name)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("Phone:    %s\n", user.Phone)
		fmt.Printf("Birthday: %s\n", user.Birthday)
		if user.Avatar != "" {
			fmt.Printf("Avatar:   %s\n", user.Avatar)
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.signedInUser(cmd.Context())
		if err != nil {
			return err
		}

		patch := session.UserPatch{}
		if cmd.Flags().Changed("name") {
			user.Name = profileName
			patch.Name = &profileName
		}
		if cmd.Flags().Changed("phone") {
			user.Phone = profilePhone
			patch.Phone = &profilePhone
		}
		if cmd.Flags().Changed("birthday") {
			user.Birthday = profileBirthday
			patch.Birthday = &profileBirthday
		}

		if _, err := a.api.UpdateUser(cmd.Context(), user.ID, user); err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Cập nhật hồ sơ thất bại. Vui lòng thử lại."))
		}
		a.sessions.ApplyUserUpdate(patch)

		fmt.Println("Profile updated.")
		return nil
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <file>",
	Short: "Upload a new avatar image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer file.Close()

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		updated, err := a.api.UploadAvatar(cmd.Context(), filepath.Base(args[0]), file)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Tải ảnh lên thất bại. Vui lòng thử lại."))
		}
		a.sessions.ApplyUserUpdate(session.UserPatch{Avatar: &updated.Avatar})

		fmt.Printf("Avatar updated: %s\n", updated.Avatar)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileAvatarCmd)
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileUpdateCmd.Flags().StringVar(&profileBirthday, "birthday", "", "Birthday (dd/mm/yyyy)")
}
