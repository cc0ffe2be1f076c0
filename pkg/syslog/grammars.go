package syslog

// Base grammar texts in ABNF. Each names the productions a REGISTERING
// clause may capture; extensions typically refine the msg production.

// rsyslogABNF describes the traditional rsyslog wire format
// (RFC3164-flavored, as emitted by the default rsyslog templates).
const rsyslogABNF = `
rsyslog-msg     = pri timestamp SP hostname SP app-name ":" SP msg
pri             = "<" prival ">"
prival          = 1*3DIGIT
timestamp       = month SP day SP partial-time
month           = "Jan" / "Feb" / "Mar" / "Apr" / "May" / "Jun" /
                  "Jul" / "Aug" / "Sep" / "Oct" / "Nov" / "Dec"
day             = (SP DIGIT) / 2DIGIT
partial-time    = 2DIGIT ":" 2DIGIT ":" 2DIGIT
hostname        = 1*255PRINTUSASCII
app-name        = 1*48PRINTUSASCII
msg             = *OCTET
PRINTUSASCII    = %d33-126
OCTET           = %d0-255
SP              = %d32
DIGIT           = %d48-57
`

// syslogABNF describes the RFC5424 syslog protocol message format.
const syslogABNF = `
syslog-msg      = header SP structured-data [SP msg]
header          = pri version SP timestamp SP hostname SP app-name SP procid SP msgid
pri             = "<" prival ">"
prival          = 1*3DIGIT
version         = NONZERO-DIGIT 0*2DIGIT
timestamp       = NILVALUE / full-date "T" full-time
full-date       = date-fullyear "-" date-month "-" date-mday
date-fullyear   = 4DIGIT
date-month      = 2DIGIT
date-mday       = 2DIGIT
full-time       = partial-time time-offset
partial-time    = 2DIGIT ":" 2DIGIT ":" 2DIGIT [time-secfrac]
time-secfrac    = "." 1*6DIGIT
time-offset     = "Z" / time-numoffset
time-numoffset  = ("+" / "-") 2DIGIT ":" 2DIGIT
hostname        = NILVALUE / 1*255PRINTUSASCII
app-name        = NILVALUE / 1*48PRINTUSASCII
procid          = NILVALUE / 1*128PRINTUSASCII
msgid           = NILVALUE / 1*32PRINTUSASCII
structured-data = NILVALUE / 1*sd-element
sd-element      = "[" sd-id *(SP sd-param) "]"
sd-id           = sd-name
sd-param        = param-name "=" %d34 param-value %d34
param-name      = sd-name
param-value     = *OCTET
sd-name         = 1*32PRINTUSASCII
msg             = *OCTET
NILVALUE        = "-"
PRINTUSASCII    = %d33-126
NONZERO-DIGIT   = %d49-57
OCTET           = %d0-255
SP              = %d32
DIGIT           = %d48-57
`

// syslogDraft15ABNF describes the draft-ietf-syslog-protocol-15 format,
// which predates RFC5424 and lacks structured data.
const syslogDraft15ABNF = `
syslog-msg      = header SP msg
header          = pri version SP timestamp SP hostname SP app-name SP procid SP msgid
pri             = "<" prival ">"
prival          = 1*3DIGIT
version         = NONZERO-DIGIT 0*2DIGIT
timestamp       = full-date "T" full-time
full-date       = date-fullyear "-" date-month "-" date-mday
date-fullyear   = 4DIGIT
date-month      = 2DIGIT
date-mday       = 2DIGIT
full-time       = partial-time time-offset
partial-time    = 2DIGIT ":" 2DIGIT ":" 2DIGIT [time-secfrac]
time-secfrac    = "." 1*6DIGIT
time-offset     = "Z" / time-numoffset
time-numoffset  = ("+" / "-") 2DIGIT ":" 2DIGIT
hostname        = NILVALUE / 1*255PRINTUSASCII
app-name        = NILVALUE / 1*48PRINTUSASCII
procid          = NILVALUE / 1*128PRINTUSASCII
msgid           = NILVALUE / 1*32PRINTUSASCII
msg             = *OCTET
NILVALUE        = "-"
PRINTUSASCII    = %d33-126
NONZERO-DIGIT   = %d49-57
OCTET           = %d0-255
SP              = %d32
DIGIT           = %d48-57
`
