package config

// Key identifies one recognized configuration property. The same string is
// used for the explicit override, the environment variable and the
// properties-file entry.
type Key string

const (
	Debug                 Key = "mailcraft.debug"
	TransportStrategy     Key = "mailcraft.transportstrategy"
	SMTPHost              Key = "mailcraft.smtp.host"
	SMTPPort              Key = "mailcraft.smtp.port"
	SMTPUsername          Key = "mailcraft.smtp.username"
	SMTPPassword          Key = "mailcraft.smtp.password"
	ProxyHost             Key = "mailcraft.proxy.host"
	ProxyPort             Key = "mailcraft.proxy.port"
	ProxyUsername         Key = "mailcraft.proxy.username"
	ProxyPassword         Key = "mailcraft.proxy.password"
	ProxySocks5BridgePort Key = "mailcraft.proxy.socks5bridge.port"
	DefaultSubject        Key = "mailcraft.defaults.subject"
	DefaultFromName       Key = "mailcraft.defaults.from.name"
	DefaultFromAddress    Key = "mailcraft.defaults.from.address"
	DefaultReplyToName    Key = "mailcraft.defaults.replyto.name"
	DefaultReplyToAddress Key = "mailcraft.defaults.replyto.address"
	DefaultToName         Key = "mailcraft.defaults.to.name"
	DefaultToAddress      Key = "mailcraft.defaults.to.address"
	DefaultCcName         Key = "mailcraft.defaults.cc.name"
	DefaultCcAddress      Key = "mailcraft.defaults.cc.address"
	DefaultBccName        Key = "mailcraft.defaults.bcc.name"
	DefaultBccAddress     Key = "mailcraft.defaults.bcc.address"
	DefaultPoolSize       Key = "mailcraft.defaults.poolsize"
	DefaultSessionTimeout Key = "mailcraft.defaults.sessiontimeoutmillis"
	TransportModeLogging  Key = "mailcraft.transport.mode.logging.only"
)

// Keys lists every recognized property. A properties file containing a key
// outside this set fails to load.
var Keys = []Key{
	Debug,
	TransportStrategy,
	SMTPHost,
	SMTPPort,
	SMTPUsername,
	SMTPPassword,
	ProxyHost,
	ProxyPort,
	ProxyUsername,
	ProxyPassword,
	ProxySocks5BridgePort,
	DefaultSubject,
	DefaultFromName,
	DefaultFromAddress,
	DefaultReplyToName,
	DefaultReplyToAddress,
	DefaultToName,
	DefaultToAddress,
	DefaultCcName,
	DefaultCcAddress,
	DefaultBccName,
	DefaultBccAddress,
	DefaultPoolSize,
	DefaultSessionTimeout,
	TransportModeLogging,
}
