package clip

const platformName = "macOS NSPasteboard"
