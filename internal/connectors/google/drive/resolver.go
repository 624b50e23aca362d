package drive

// ResolveWebURL returns the browser URL for a Drive file.
// Uses the webViewLink from the API when present, otherwise builds the
// canonical file URL from the ID.
func ResolveWebURL(fileID, webViewLink string) string {
	if webViewLink != "" {
		return webViewLink
	}

	if fileID == "" {
		return ""
	}

	return "https://drive.google.com/file/d/" + fileID + "/view"
}
