package service

// Client-facing messages. The browser frontend matches on some of these, so
// they are kept byte for byte.
const (
	MsgRequiredFieldsEmpty = "Required Fields empty!"
	MsgExceedLimit         = "Exceed character limit!"
	MsgInvalidUsername     = "Username can only contain Lowercase Letters Numbers Dots Underscores"
	MsgUserExists          = "User already exists!"
	MsgUserNotFound        = "User not found, SignUp first!"
	MsgWrongCredentials    = "Wrong Username or Password!"

	MsgNoUserID          = "No User Id provided!"
	MsgNoteEmpty         = "Both Title and Content cannot be empty!"
	MsgNoNoteID          = "No Note Id Provided!"
	MsgInvalidID         = "Invalid Id!"
	MsgNothingToUpdate   = "Nothing to update!"
	MsgArchivedBookmark  = "A note cannot be both archived and bookmarked!"
	MsgBookmarkArchived  = "Cannot bookmark an archived note!"
	MsgArchiveBookmarked = "Cannot archive a bookmarked note!"
	MsgNoteNotFound      = "Note Not Found!"
	MsgNoNotesSelected   = "No Notes Selected!"

	MsgTagFieldsEmpty = "Required Fields Empty!"
	MsgNoTagID        = "No ID provided!"
	MsgNoTagFound     = "No Tag Found!"
	MsgTagNotFound    = "Tag Not Found!"

	MsgNoAssocIDs       = "No Note Id or Tag Id provided!"
	MsgInvalidAssocIDs  = "Invalid Note or Tag Id!"
	MsgAssocNoNote      = "No Note found!"
	MsgAssocNoTag       = "No Tag found!"
	MsgTagAlreadyAdded  = "Tag already Added To the Note!"
	MsgTagNotAssociated = "Tag is not associated with the Note!"
)

// MaxFieldLength is the exclusive rune limit on credential fields.
const MaxFieldLength = 20
