package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
)

var (
	roomFile        string
	roomImageRoomID int64
)

var adminRoomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Manage room listings",
}

// roomFromFile reads a room listing from a JSON file using the backend's
// field names.
func roomFromFile(path string) (client.Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return client.Room{}, fmt.Errorf("failed to read room file: %w", err)
	}
	var room client.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return client.Room{}, fmt.Errorf("failed to parse room file: %w", err)
	}
	return room, nil
}

var adminRoomsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a room listing from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := roomFromFile(roomFile)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		created, err := a.api.CreateRoom(cmd.Context(), room)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Tạo phòng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Created room %d (%s)\n", created.ID, created.Name)
		return nil
	},
}

var adminRoomsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a room listing from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roomID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[0])
		}
		room, err := roomFromFile(roomFile)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		updated, err := a.api.UpdateRoom(cmd.Context(), roomID, room)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Cập nhật phòng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Updated room %d (%s)\n", updated.ID, updated.Name)
		return nil
	},
}

var adminRoomsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a room listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roomID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		if err := a.api.DeleteRoom(cmd.Context(), roomID); err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Xóa phòng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Deleted room %d\n", roomID)
		return nil
	},
}

var adminRoomsUploadImageCmd = &cobra.Command{
	Use:   "upload-image <file>",
	Short: "Upload an image for a room",
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

		updated, err := a.api.UploadRoomImage(cmd.Context(), roomImageRoomID, filepath.Base(args[0]), file)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Tải ảnh lên thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Image updated for room %d: %s\n", updated.ID, updated.Image)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminRoomsCmd)
	adminRoomsCmd.AddCommand(adminRoomsCreateCmd)
	adminRoomsCmd.AddCommand(adminRoomsUpdateCmd)
	adminRoomsCmd.AddCommand(adminRoomsDeleteCmd)
	adminRoomsCmd.AddCommand(adminRoomsUploadImageCmd)

	adminRoomsCreateCmd.Flags().StringVar(&roomFile, "file", "", "JSON file with the room listing")
	adminRoomsUpdateCmd.Flags().StringVar(&roomFile, "file", "", "JSON file with the room listing")
	adminRoomsUploadImageCmd.Flags().Int64Var(&roomImageRoomID, "room", 0, "Room id the image belongs to")
	adminRoomsCreateCmd.MarkFlagRequired("file")
	adminRoomsUpdateCmd.MarkFlagRequired("file")
	adminRoomsUploadImageCmd.MarkFlagRequired("room")
}
