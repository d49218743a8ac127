/*
Package notesdk provides a client SDK for the Notes service.

# Overview

The service answers every API call with a JSON envelope:

	{"success": true, "message": "Notes fetched Successfully!", "data": [...]}

The SDK unwraps the envelope, returning the typed data on success and an
*APIError carrying the HTTP status and message otherwise.

# Sessions

The service authenticates browsers with an HttpOnly "jwt" cookie. An
SDKClient keeps a cookie jar, so after Register or Login every further call
on the same client is authenticated:

	client := notesdk.NewSDKClient("http://localhost:3000")

	user, err := client.Login(ctx, notesdk.LoginRequest{
		Username: "ada",
		Password: "secret",
	})

	note, err := client.CreateNote(ctx, notesdk.CreateNoteRequest{Title: "groceries"})

	archived := true
	note, err = client.UpdateNote(ctx, note.ID, notesdk.UpdateNoteRequest{IsArchived: &archived})

Logout clears the cookie on the server side and in the jar.

# Error Handling

	_, err := client.CreateTag(ctx, notesdk.TagRequest{Name: ""})
	var apiErr *notesdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.StatusCode, apiErr.Message) // 400 Required Fields Empty!
	}
*/
package notesdk
