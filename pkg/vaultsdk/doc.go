// Package vaultsdk is a Go client for the passvault HTTP API.
//
// The request and response types in this package are also the wire types the
// server encodes, so both sides agree on field names and optionality.
//
// Basic usage:
//
//	client := vaultsdk.NewClient("http://localhost:8080")
//
//	user, err := client.CreateUser(ctx, vaultsdk.CreateUserRequest{
//		Username:           "alice",
//		MasterPasswordHash: hash,
//	})
//	if err != nil {
//		return err
//	}
//
//	cred, err := client.CreateCredential(ctx, vaultsdk.CreateCredentialRequest{
//		UserID:            user.UserID,
//		Title:             vaultsdk.String("gmail"),
//		PasswordEncrypted: ciphertext,
//	})
//
// Errors returned by the server are *APIError values; use IsNotFound,
// IsConflict and IsInvalidRequest to branch on them.
package vaultsdk
