package domain

type User struct {
	ID         string   `bson:"id" json:"id"`
	Username   string   `bson:"username" json:"username"`
	Email      string   `bson:"email" json:"email"`
	Password   string   `bson:"password" json:"-"`
	Role       string   `bson:"role" json:"role"` // "user" or "admin"
	Banned     bool     `bson:"banned" json:"banned"`
	AvatarURL  string   `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	LikedSongs []string `bson:"likedSongs" json:"likedSongs"`
	CreatedAt  int64    `bson:"created_at" json:"created_at"`
	UpdatedAt  int64    `bson:"updated_at" json:"updated_at"`
}
