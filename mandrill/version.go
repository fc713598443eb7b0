package mandrill

// Version is the client version sent in the User-Agent header.
const Version = "1.0.55"
