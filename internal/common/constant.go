package common

// AccessTokenHeaderName is the HTTP header used to carry the access token
// on outbound requests ("Authorization: Bearer <token>").
const AccessTokenHeaderName = "Authorization"

// MaxSubmissionImages is the exclusive upper bound on images per submission:
// a submission is rejected when it references MaxSubmissionImages or more
// objects at the moment the record is written.
const MaxSubmissionImages = 5
