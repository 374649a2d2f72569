package clip

const platformName = "Windows Clipboard"
