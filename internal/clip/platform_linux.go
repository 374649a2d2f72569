package clip

const platformName = "Linux X11"
