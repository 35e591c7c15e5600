package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// EncryptedSuffix is appended to the original file name of encrypted files.
const EncryptedSuffix = ".enc"
