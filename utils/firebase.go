package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sharath018/seva-booking-backend/config"
	"google.golang.org/api/option"
)

var (
	FirebaseClient *messaging.Client
	firebaseOnce   sync.Once
	firebaseErr    error
)

// InitFirebase sets up the FCM client once. Missing credentials are not fatal:
// the error is returned and push notifications stay disabled.
func InitFirebase(cfg *config.Config) error {
	firebaseOnce.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = cfg.FCMCredentialsPath
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			firebaseErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}
		if cfg.FCMProjectID == "" {
			firebaseErr = fmt.Errorf("FCM_PROJECT_ID is required for FCM")
			return
		}

		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FCMProjectID}, option.WithCredentialsFile(credentialsPath))
		if err != nil {
			firebaseErr = fmt.Errorf("firebase app initialization failed: %v", err)
			return
		}

		client, err := app.Messaging(ctx)
		if err != nil {
			firebaseErr = fmt.Errorf("FCM client initialization failed: %v", err)
			return
		}

		FirebaseClient = client
		log.Printf("✅ FCM client initialized for project: %s", cfg.FCMProjectID)
	})
	return firebaseErr
}

// IsFCMEnabled checks if FCM is available
func IsFCMEnabled() bool {
	return FirebaseClient != nil
}
