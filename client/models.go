package client

// Wire models for the booking backend. JSON field names follow the
// backend's Vietnamese schema and must not be changed.

// User is a marketplace account as returned by the backend. Birthday is
// an ISO date string; the client never parses or derives user fields.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Avatar   string `json:"avatar"`
	Gender   bool   `json:"gender"`
	Role     string `json:"role"`
}

// SignUpRequest is the payload for account creation.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Gender   bool   `json:"gender"`
}

// AuthResponse is the content of a successful sign-in.
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Location is a bookable area (city district, island, ...).
type Location struct {
	ID       int64  `json:"id"`
	Name     string `json:"tenViTri"`
	Province string `json:"tinhThanh"`
	Country  string `json:"quocGia"`
	Image    string `json:"hinhAnh"`
}

// Room is a rental listing.
type Room struct {
	ID            int64  `json:"id"`
	Name          string `json:"tenPhong"`
	MaxGuests     int    `json:"khach"`
	Bedrooms      int    `json:"phongNgu"`
	Beds          int    `json:"giuong"`
	Bathrooms     int    `json:"phongTam"`
	Description   string `json:"moTa"`
	LocationNote  string `json:"moTaVitri,omitempty"`
	PricePerNight int64  `json:"giaTien"`
	Washer        bool   `json:"mayGiat"`
	Iron          bool   `json:"banLa"`
	TV            bool   `json:"tivi"`
	AirCon        bool   `json:"dieuHoa"`
	Wifi          bool   `json:"wifi"`
	Kitchen       bool   `json:"bep"`
	Parking       bool   `json:"doXe"`
	Pool          bool   `json:"hoBoi"`
	IroningBoard  bool   `json:"banUi"`
	LocationID    int64  `json:"maViTri"`
	Image         string `json:"hinhAnh"`
}

// Rating is a star review on a room.
type Rating struct {
	ID      int64  `json:"id"`
	RoomID  int64  `json:"maPhong"`
	UserID  int64  `json:"maNguoiBinhLuan"`
	Date    string `json:"ngayBinhLuan"`
	Comment string `json:"noiDung"`
	Stars   int    `json:"saoBinhLuan"`
}

// RatingInput is the payload for creating or updating a rating.
type RatingInput struct {
	RoomID  int64  `json:"maPhong"`
	Comment string `json:"noiDung"`
	Stars   int    `json:"saoBinhLuan"`
}

// RatingWithUser is a rating joined with its author, as returned by the
// per-room listing endpoint.
type RatingWithUser struct {
	Rating
	AuthorName string `json:"tenNguoiBinhLuan"`
	Avatar     string `json:"avatar"`
}

// Booking is a reservation. Check-in and check-out are ISO date strings
// on the wire.
type Booking struct {
	ID       int64  `json:"id"`
	RoomID   int64  `json:"maPhong"`
	CheckIn  string `json:"ngayDen"`
	CheckOut string `json:"ngayDi"`
	Guests   int    `json:"soLuongKhach"`
	UserID   int64  `json:"maNguoiDung"`
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	RoomID   int64  `json:"maPhong"`
	CheckIn  string `json:"ngayDen"`
	CheckOut string `json:"ngayDi"`
	Guests   int    `json:"soLuongKhach"`
	UserID   int64  `json:"maNguoiDung"`
}

// UserPage is one page of the admin user search.
type UserPage struct {
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
	TotalRow  int    `json:"totalRow"`
	Keyword   string `json:"keywords"`
	Data      []User `json:"data"`
}
