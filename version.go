package fourline

// Version is the current release of the fourline module.
const Version = "0.1.0"
