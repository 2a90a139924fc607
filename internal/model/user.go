package model

// User is a document in the users collection, keyed by the Firebase UID.
// This system only ever reads users; the mobile app owns the rest of the
// document, so only the push token is mapped here.
type User struct {
	UID      string `firestore:"-" json:"uid"`
	FCMToken string `firestore:"fcmToken" json:"fcm_token,omitempty"`
}

// HasPushToken reports whether the user can receive push notifications
func (u *User) HasPushToken() bool {
	return u != nil && u.FCMToken != ""
}
