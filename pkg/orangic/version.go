package orangic

// Version is the client library version reported in the User-Agent
// header of every request.
const Version = "1.0.0"

const userAgent = "orangic-go/" + Version
